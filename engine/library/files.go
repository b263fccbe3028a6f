package library

import (
	"os"
)

// Touch creates the named file if it does not exist.
func Touch(path string) {
	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		LogCLI(err.Error(), 1)
		return
	}
	file.Close()
}
