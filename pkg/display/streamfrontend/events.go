package streamfrontend

// Message type bytes exchanged over the websocket connection. Trimmed
// from the teacher's multi-client protocol (pkg/display/web/events.go in
// the retrieved snapshot) to the single-client subset spec.md §6 needs: a
// frame going out, a key event coming back.
const (
	msgFrame   byte = 1
	msgKeyDown byte = 2
	msgKeyUp   byte = 3
)
