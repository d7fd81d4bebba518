package swproxy

import "strings"

const (
	cachePrefix     = "wolfnotes-"
	defaultDocument = "/index.html"
	offlineDocument = "/pages/offline.html"
	imageFallback   = "/images/home_logo.png"
	apiPathPrefix   = "/api"
)

// routeToFile maps frontend routes to the cached document each falls back to
// when a navigation cannot reach the network.
var routeToFile = map[string]string{
	"/":                    "/index.html",
	"/login":               "/pages/login.html",
	"/register/student":    "/pages/studentRegister.html",
	"/register/instructor": "/pages/instructorRegister.html",
	"/student/home":        "/pages/studentHomepage.html",
	"/student/notes":       "/pages/myNotes.html",
	"/instructor/home":     "/pages/instructorHomepage.html",
	"/instructor/profile":  "/pages/instructorProfile.html",
}

// matchDynamicRoute resolves parameterized paths: every class detail page
// shares one generic document.
func matchDynamicRoute(path string) string {
	if strings.HasPrefix(path, "/class/") {
		return "/pages/classView.html"
	}
	return ""
}

// fallbackDocument is the exact → prefix → default matching order for
// navigations.
func fallbackDocument(path string) string {
	if doc, ok := routeToFile[path]; ok {
		return doc
	}
	if doc := matchDynamicRoute(path); doc != "" {
		return doc
	}
	return defaultDocument
}

// DefaultManifest lists the assets precached at install time.
var DefaultManifest = []string{
	"/pages/offline.html",
	"/pages/classView.html",
	"/index.html",
	"/pages/instructorHomepage.html",
	"/pages/instructorRegister.html",
	"/pages/login.html",
	"/pages/myNotes.html",
	"/pages/studentHomepage.html",
	"/pages/studentRegister.html",
	"/pages/instructorProfile.html",
	"/css/instructorProfile.css",
	"/css/classView.css",
	"/css/instructorHomepage.css",
	"/css/landing.css",
	"/css/mynotes.css",
	"/css/register.css",
	"/css/studentHomepage.css",
	"/css/styles.css",
	"/css/offline.css",
	"/images/home_logo.png",
	"/images/like.png",
	"/images/logout_icon.png",
	"/images/icons/icon-128.png",
	"/images/icons/icon-256.png",
	"/images/icons/icon-512.png",
	"/images/user.png",
	"/js/app.js",
	"/js/authCheck.js",
	"/js/classView.js",
	"/js/login.js",
	"/js/myNotes.js",
	"/js/studentHomepage.js",
	"/js/studentRegister.js",
	"/js/instructorHomepage.js",
	"/js/instructorRegister.js",
}
