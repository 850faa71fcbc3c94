// Package assets resolves source asset paths to the URLs served to browsers.
//
// Asset bundlers emit a revision manifest mapping source paths to
// fingerprinted file names. Resolver loads such a manifest (JSON or YAML)
// and prefixes results with a base URL, so "styles/main.css" becomes
// "/app/dist/styles/main_3b0a1c.css". A changed build changes the resolved URL,
// which is what the preload tracker fingerprints.
//
//	res, err := assets.New("/app/dist", assets.WithManifestFile("dist/assets.json"))
//	url, err := res.Resolve("styles/main.css")
//
// Resolver satisfies preload.Resolver.
package assets
