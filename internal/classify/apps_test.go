package classify

import "testing"

func TestAppResolver_Resolve(t *testing.T) {
	resolver := NewAppResolver([]AppLabel{
		{Label: "Zomato", PackageID: "com.application.zomato"},
		{Label: "Truecaller", PackageID: "com.truecaller"},
		{Label: "My Bank App", PackageID: "com.example.bank"},
	})

	tests := []struct {
		name string
		want string
	}{
		// Alias table, including misspellings
		{"whatsapp", "com.whatsapp"},
		{"watsapp", "com.whatsapp"},
		{"WhatsApp", "com.whatsapp"},
		{"utube", "com.google.android.youtube"},
		{"google pay", "com.google.android.apps.nbu.paisa.user"},

		// Exact installed label
		{"zomato", "com.application.zomato"},
		{"Truecaller", "com.truecaller"},

		// Substring containment, either direction
		{"bank", "com.example.bank"},
		{"my bank app please", "com.example.bank"},

		// Prefix
		{"truecall", "com.truecaller"},

		// No match
		{"nonexistent app", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := resolver.Resolve(tt.name); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAppResolver_AliasBeatsInstalled(t *testing.T) {
	// An installed app labeled "Chrome Remote" must not shadow the alias.
	resolver := NewAppResolver([]AppLabel{
		{Label: "Chrome Remote", PackageID: "com.google.chromeremotedesktop"},
	})

	if got := resolver.Resolve("chrome"); got != "com.android.chrome" {
		t.Errorf("Resolve(chrome) = %q, want alias com.android.chrome", got)
	}
}

func TestAppResolver_NilInstalled(t *testing.T) {
	resolver := NewAppResolver(nil)

	if got := resolver.Resolve("spotify"); got != "com.spotify.music" {
		t.Errorf("alias resolution should work with no installed list, got %q", got)
	}
	if got := resolver.Resolve("randomapp"); got != "" {
		t.Errorf("Resolve(randomapp) = %q, want empty", got)
	}
}
