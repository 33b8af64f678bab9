package cmd

import (
	"strings"
	"testing"
)

func TestFmt_Run(t *testing.T) {
	path := writeDoc(t, "x\n% multitext header\nh\n% a\n1\n%b\n2\n")

	t.Run("native", func(t *testing.T) {
		ctx, out := testContext(t, Input{Path: path})
		if err := (&Native{}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		if want := "% multitext header\nh\n% a\n1\n% b\n2\n"; out.String() != want {
			t.Errorf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		ctx, out := testContext(t, Input{Path: path})
		if err := (&JSON{Indent: 0}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		if want := `{"multitext header":"h\n","a":"1\n","b":"2\n"}` + "\n"; out.String() != want {
			t.Errorf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		ctx, out := testContext(t, Input{Path: path})
		if err := (&YAML{Indent: 2}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		got := out.String()
		for _, key := range []string{"multitext header:", "a:", "b:"} {
			if !strings.Contains(got, key) {
				t.Errorf("expected %q in output:\n%s", key, got)
			}
		}
	})
}
