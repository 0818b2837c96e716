package store

import (
	"strings"
	"testing"

	"github.com/art-space/artspace/models"
)

func TestBuildListArtworksQuery_NoFilter(t *testing.T) {
	query, args, err := buildListArtworksQuery(models.ArtworkFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("expected newest-first ordering, got %q", query)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no predicate, got %q", query)
	}
}

func TestBuildListArtworksQuery_ForSaleExcludesSold(t *testing.T) {
	forSale := true
	query, args, err := buildListArtworksQuery(models.ArtworkFilter{ForSale: &forSale})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "for_sale") || !strings.Contains(query, "sold") {
		t.Errorf("expected for_sale and sold predicates, got %q", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}
}

func TestBuildListArtworksQuery_ArtistAndLimit(t *testing.T) {
	query, args, err := buildListArtworksQuery(models.ArtworkFilter{ArtistID: 3, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "artist_id") {
		t.Errorf("expected artist predicate, got %q", query)
	}
	if !strings.Contains(query, "LIMIT 10") {
		t.Errorf("expected LIMIT clause, got %q", query)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %v", args)
	}
}

func TestBuildUpdateProfileQuery_Empty(t *testing.T) {
	_, _, ok, err := buildUpdateProfileQuery(1, models.ProfileUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for an empty update")
	}
}

func TestBuildUpdateProfileQuery_BothFields(t *testing.T) {
	username := "alice"
	picture := "https://img.example.com/alice.png"

	query, args, ok, err := buildUpdateProfileQuery(1, models.ProfileUpdate{
		Username:       &username,
		ProfilePicture: &picture,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !strings.Contains(query, "username") || !strings.Contains(query, "profile_picture") {
		t.Errorf("expected both columns in SET clause, got %q", query)
	}
	if !strings.Contains(query, "RETURNING") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args (two columns + user id), got %v", args)
	}
}
