package desktop

import (
	"testing"
)

func TestLocaleKeys(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want []string
	}{
		{map[string]string{"LANG": "de_DE.UTF-8"}, []string{"de_DE", "de"}},
		{map[string]string{"LANG": "sr_RS.UTF-8@latin"}, []string{"sr_RS@latin", "sr_RS", "sr@latin", "sr"}},
		{map[string]string{"LANG": "fr"}, []string{"fr"}},
		{map[string]string{"LANG": "tl_PH.UTF-8"}, []string{"tl_PH", "tl"}},
		{map[string]string{"LANG": "sh_RS"}, []string{"sh_RS", "sh"}},
		{map[string]string{"LANG": "iw_IL.UTF-8"}, []string{"iw_IL", "iw"}},
		{map[string]string{"LANG": "C.UTF-8"}, nil},
		{map[string]string{"LANG": "POSIX"}, nil},
		{map[string]string{}, nil},
		{map[string]string{"LANG": "de_DE.UTF-8", "LC_MESSAGES": "pt_BR.UTF-8"}, []string{"pt_BR", "pt"}},
		{map[string]string{"LANG": "de_DE.UTF-8", "LC_MESSAGES": "pt_BR", "LC_ALL": "ja_JP.UTF-8"}, []string{"ja_JP", "ja"}},
	}
	for _, c := range cases {
		got := LocaleKeys(func(k string) string { return c.env[k] })
		if len(got) != len(c.want) {
			t.Errorf("LocaleKeys(%v) = %v want %v", c.env, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("LocaleKeys(%v) = %v want %v", c.env, got, c.want)
				break
			}
		}
	}
}
