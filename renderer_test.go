package execreport

import (
	"errors"
	"testing"
)

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     string
		wantName string
		wantExt  string
		wantErr  error
	}{
		{kind: "", wantName: RendererMarkup, wantExt: ExtensionHTML},
		{kind: "markup", wantName: RendererMarkup, wantExt: ExtensionHTML},
		{kind: " Markup ", wantName: RendererMarkup, wantExt: ExtensionHTML},
		{kind: "canvas", wantName: RendererCanvas, wantExt: ExtensionPDF},
		{kind: "CANVAS", wantName: RendererCanvas, wantExt: ExtensionPDF},
		{kind: "latex", wantErr: ErrUnknownRenderer},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()

			r, err := NewRenderer(tt.kind)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewRenderer(%q) error = %v, want %v", tt.kind, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRenderer(%q) error = %v", tt.kind, err)
			}
			if r.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.wantName)
			}
			if r.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", r.Extension(), tt.wantExt)
			}
		})
	}
}

func TestRendererNames(t *testing.T) {
	t.Parallel()

	names := RendererNames()
	if len(names) != 2 || names[0] != RendererMarkup || names[1] != RendererCanvas {
		t.Errorf("RendererNames() = %v", names)
	}
}
