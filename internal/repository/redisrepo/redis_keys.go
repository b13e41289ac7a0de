package redisrepo

import "fmt"

const (
	RENDERED_DOCUMENT = "rendered-document:%s:%s" // <kind>:<payload checksum>
)

func RenderedDocumentKey(kind string, checksum string) string {
	return fmt.Sprintf(RENDERED_DOCUMENT, kind, checksum)
}
