package imageurl

import (
	"testing"

	"interia/internal/models"
)

const cdn = "https://cdn.interia.example"

// TestAssetID covers the parsing grammar: version prefixes, folders,
// extensions, transformation segments, and bare identifiers.
func TestAssetID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "empty", raw: "", want: "", wantOK: false},
		{
			name:   "plain upload url",
			raw:    cdn + "/upload/projects/kitchen.jpg",
			want:   "projects/kitchen",
			wantOK: true,
		},
		{
			name:   "version prefix",
			raw:    cdn + "/upload/v1712345678/projects/kitchen.jpg",
			want:   "projects/kitchen",
			wantOK: true,
		},
		{
			name:   "existing transformation segment",
			raw:    cdn + "/upload/f_auto,q_auto,w_800,h_600,c_fill/v17/living-room.webp",
			want:   "living-room",
			wantOK: true,
		},
		{name: "bare identifier", raw: "projects/kitchen", want: "projects/kitchen", wantOK: true},
		{name: "bare identifier leading slash", raw: "/hero-1", want: "hero-1", wantOK: true},
		{name: "foreign url", raw: "https://elsewhere.example/photo.jpg", want: "", wantOK: false},
		{name: "upload marker with nothing after", raw: cdn + "/upload/", want: "", wantOK: false},
		{
			name:   "no extension",
			raw:    cdn + "/upload/v5/hero",
			want:   "hero",
			wantOK: true,
		},
		{
			name:   "dot in folder name only",
			raw:    cdn + "/upload/v5/studio.assets/hero",
			want:   "studio.assets/hero",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AssetID(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AssetID(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestOptimized verifies the transformation URL construction and the
// fall-back-to-input behavior for unparseable values.
func TestOptimized(t *testing.T) {
	b := New(cdn)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{
			name: "full url",
			raw:  cdn + "/upload/v17/projects/kitchen.jpg",
			want: cdn + "/upload/f_auto,q_auto,w_800,h_600,c_fill,g_auto,dpr_auto/projects/kitchen",
		},
		{
			name: "already transformed url is rebuilt",
			raw:  cdn + "/upload/f_auto,q_auto,w_100,h_100,c_fill/v17/kitchen.jpg",
			want: cdn + "/upload/f_auto,q_auto,w_800,h_600,c_fill,g_auto,dpr_auto/kitchen",
		},
		{
			name: "bare identifier",
			raw:  "projects/kitchen",
			want: cdn + "/upload/f_auto,q_auto,w_800,h_600,c_fill,g_auto,dpr_auto/projects/kitchen",
		},
		{
			name: "foreign url unchanged",
			raw:  "https://elsewhere.example/photo.jpg",
			want: "https://elsewhere.example/photo.jpg",
		},
		{
			name: "not-a-cloudinary-url unchanged",
			raw:  "not-a-cloudinary-url://???",
			want: "not-a-cloudinary-url://???",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Optimized(tt.raw, 800, 600); got != tt.want {
				t.Errorf("Optimized(%q) =\n  %q\nwant\n  %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestOptimizedWithoutBaseURL ensures bare identifiers survive unchanged
// when no delivery origin is configured.
func TestOptimizedWithoutBaseURL(t *testing.T) {
	b := New("")
	if got := b.Optimized("projects/kitchen", 800, 600); got != "projects/kitchen" {
		t.Errorf("Optimized without base = %q, want input unchanged", got)
	}
}

// TestResponsive checks width ordering and aspect-ratio-preserving heights.
func TestResponsive(t *testing.T) {
	b := New(cdn)
	raw := cdn + "/upload/v17/hero.jpg"

	got := b.Responsive(raw, 1920, 1080, nil)
	if len(got) != len(DefaultWidths) {
		t.Fatalf("got %d variants, want %d", len(got), len(DefaultWidths))
	}

	wantHeights := map[int]int{320: 180, 640: 360, 1024: 576, 1920: 1080}
	for i, v := range got {
		if v.Width != DefaultWidths[i] {
			t.Errorf("variant %d width = %d, want %d", i, v.Width, DefaultWidths[i])
		}
		wantURL := b.Optimized(raw, v.Width, wantHeights[v.Width])
		if v.URL != wantURL {
			t.Errorf("variant %d url = %q, want %q", i, v.URL, wantURL)
		}
	}
}

// TestResponsiveEmptyInput yields no variants, not a panic.
func TestResponsiveEmptyInput(t *testing.T) {
	b := New(cdn)
	if got := b.Responsive("", 800, 600, nil); got != nil {
		t.Errorf("Responsive(\"\") = %v, want nil", got)
	}
}

// TestOptimizeRefPreservesAssetID ensures only the URL field is rewritten.
func TestOptimizeRefPreservesAssetID(t *testing.T) {
	b := New(cdn)
	ref := models.ImageRef{URL: cdn + "/upload/v1/avatars/jane.jpg", AssetID: "avatars/jane"}

	got := b.OptimizeRef(ref, 200, 200)
	if got.AssetID != "avatars/jane" {
		t.Errorf("AssetID = %q, want preserved", got.AssetID)
	}
	if got.URL == ref.URL {
		t.Error("URL was not rewritten")
	}
	// Input must not be mutated.
	if ref.URL != cdn+"/upload/v1/avatars/jane.jpg" {
		t.Error("input ref was mutated")
	}
}

// TestOptimizeProjectImagesPreservesSiblings verifies featured/position
// fields survive URL rewriting.
func TestOptimizeProjectImagesPreservesSiblings(t *testing.T) {
	b := New(cdn)
	in := models.ProjectImages{
		{URL: cdn + "/upload/v1/p/a.jpg", AssetID: "p/a", Position: 0, Featured: true},
		{URL: "https://elsewhere.example/x.jpg", Position: 1},
	}

	got := b.OptimizeProjectImages(in, 800, 600)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if !got[0].Featured || got[0].Position != 0 || got[0].AssetID != "p/a" {
		t.Errorf("sibling fields lost: %+v", got[0])
	}
	if got[1].URL != "https://elsewhere.example/x.jpg" {
		t.Errorf("foreign URL rewritten: %q", got[1].URL)
	}

	if b.OptimizeProjectImages(nil, 800, 600) != nil {
		t.Error("nil gallery should stay nil")
	}
}

// TestScaledHeight covers degenerate base dimensions.
func TestScaledHeight(t *testing.T) {
	tests := []struct {
		name               string
		baseW, baseH, want int
	}{
		{name: "16:9", baseW: 1920, baseH: 1080, want: 360},
		{name: "square", baseW: 400, baseH: 400, want: 640},
		{name: "zero base width", baseW: 0, baseH: 600, want: 640},
		{name: "zero base height", baseW: 800, baseH: 0, want: 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaledHeight(tt.baseW, tt.baseH, 640); got != tt.want {
				t.Errorf("scaledHeight(%d, %d, 640) = %d, want %d", tt.baseW, tt.baseH, got, tt.want)
			}
		})
	}
}
