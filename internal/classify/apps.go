package classify

import "strings"

// appAliases maps spoken app names (including common misspellings) to
// package identifiers. Lookup keys are lowercase.
var appAliases = map[string]string{
	"whatsapp":    "com.whatsapp",
	"whats app":   "com.whatsapp",
	"watsapp":     "com.whatsapp",
	"youtube":     "com.google.android.youtube",
	"you tube":    "com.google.android.youtube",
	"utube":       "com.google.android.youtube",
	"chrome":      "com.android.chrome",
	"browser":     "com.android.chrome",
	"gmail":       "com.google.android.gm",
	"mail":        "com.google.android.gm",
	"maps":        "com.google.android.apps.maps",
	"google maps": "com.google.android.apps.maps",
	"camera":      "com.android.camera",
	"gallery":     "com.android.gallery3d",
	"photos":      "com.google.android.apps.photos",
	"instagram":   "com.instagram.android",
	"insta":       "com.instagram.android",
	"facebook":    "com.facebook.katana",
	"fb":          "com.facebook.katana",
	"twitter":     "com.twitter.android",
	"x":           "com.twitter.android",
	"telegram":    "org.telegram.messenger",
	"spotify":     "com.spotify.music",
	"netflix":     "com.netflix.mediaclient",
	"amazon":      "com.amazon.mShop.android.shopping",
	"flipkart":    "com.flipkart.android",
	"paytm":       "net.one97.paytm",
	"phonepe":     "com.phonepe.app",
	"gpay":        "com.google.android.apps.nbu.paisa.user",
	"google pay":  "com.google.android.apps.nbu.paisa.user",
	"calculator":  "com.android.calculator2",
	"calendar":    "com.google.android.calendar",
	"clock":       "com.android.deskclock",
	"contacts":    "com.android.contacts",
	"phone":       "com.android.dialer",
	"messages":    "com.android.messaging",
	"settings":    "com.android.settings",
	"play store":  "com.android.vending",
	"playstore":   "com.android.vending",
}

// AppLabel pairs an installed app's human label with its package identifier.
type AppLabel struct {
	Label     string
	PackageID string
}

// AppResolver resolves a free-text app name to a package identifier: alias
// table first, then exact label match, then substring containment in either
// direction, then label prefix. The exact-contains-prefix cascade is the
// shared policy for resolving free text against a labeled corpus.
type AppResolver struct {
	aliases   map[string]string
	installed []AppLabel
}

func NewAppResolver(installed []AppLabel) *AppResolver {
	return &AppResolver{aliases: appAliases, installed: installed}
}

// Resolve returns the package identifier for name, or "" when nothing
// matches. The name is matched case-insensitively.
func (r *AppResolver) Resolve(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	if pkg, ok := r.aliases[name]; ok {
		return pkg
	}

	// Exact label match
	for _, app := range r.installed {
		if strings.ToLower(app.Label) == name {
			return app.PackageID
		}
	}

	// Substring containment, either direction
	for _, app := range r.installed {
		label := strings.ToLower(app.Label)
		if strings.Contains(label, name) || strings.Contains(name, label) {
			return app.PackageID
		}
	}

	// Label prefix
	for _, app := range r.installed {
		if strings.HasPrefix(strings.ToLower(app.Label), name) {
			return app.PackageID
		}
	}

	return ""
}
