package cmd

import (
	"errors"
	"testing"
)

func TestEnv_Run(t *testing.T) {
	path := writeDoc(t, testDoc)

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{
			name: "plain",
			env:  Env{Name: "env"},
			want: "A=\"hello world\"\nB=2\n",
		},
		{
			name: "export",
			env:  Env{Name: "env", Export: true},
			want: "export A=\"hello world\"\nexport B=2\n",
		},
		{
			name: "empty section",
			env:  Env{Name: "empty"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, Input{Path: path})

			if err := tt.env.Run(ctx); err != nil {
				t.Fatalf("run error: %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestEnv_NotFound(t *testing.T) {
	ctx, _ := testContext(t, Input{Path: writeDoc(t, testDoc)})

	if err := (&Env{Name: "missing"}).Run(ctx); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("expected ErrSectionNotFound, got %v", err)
	}
}
