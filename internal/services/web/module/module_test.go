package module

import (
	"testing"

	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
)

func TestDependenciesValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		deps    Dependencies
		wantErr bool
	}{
		{name: "empty", deps: Dependencies{}, wantErr: true},
		{name: "missing csrf", deps: Dependencies{Pages: &pagerender.Renderer{}}, wantErr: true},
		{name: "missing pages", deps: Dependencies{CSRF: &csrf.Protector{}}, wantErr: true},
		{name: "complete", deps: Dependencies{Pages: &pagerender.Renderer{}, CSRF: &csrf.Protector{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.deps.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
