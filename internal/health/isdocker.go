package health

import "os"

// IsDocker returns true if the program runs in the Docker image,
// which ships an empty isdocker file in its working directory.
func IsDocker() (ok bool) {
	_, err := os.Stat("isdocker")
	return err == nil
}
