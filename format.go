package mtcs

import "fmt"

// formatID renders an Id for diagnostics (Node.String).
func formatID[I Id](id I) string {
	return fmt.Sprintf("%v", id)
}
