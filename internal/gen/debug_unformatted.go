package gen

import "os"

// writeDebugUnformatted writes code that failed to format next to the
// intended output. WriteFiles removes the sidecar once the output
// formats again.
func writeDebugUnformatted(outName string, content []byte) error {
	if outName == "" {
		return nil
	}

	return os.WriteFile(DebugName(outName), content, filePerm)
}
