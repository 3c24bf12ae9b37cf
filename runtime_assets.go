package surveyform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-surveyform/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the browser runtime and stylesheet so Go
// applications can serve them when the vanilla renderer links assets instead
// of inlining them.
//
// Typical mount:
//
//	mux.Handle("/assets/surveyform/",
//	  http.StripPrefix("/assets/surveyform/",
//	    http.FileServerFS(surveyform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
