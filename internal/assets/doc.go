// Package assets provides the HTML template and CSS stylesheet used by the
// markup renderer.
//
// Assets are addressed by Kind and name. A style named "executive" lives at
// styles/executive.css and a template named "report" at templates/report.html,
// both in the embedded set and in a custom directory:
//
//	{basePath}/
//	├── styles/
//	│   └── executive.css
//	└── templates/
//	    └── report.html
//
// NewResolver layers a custom directory over the embedded set, so a single
// stylesheet can be overridden while the built-in template is kept.
//
// Custom directories are read through os.Root: names cannot traverse out of
// the base path, and neither can symlinks inside it.
package assets
