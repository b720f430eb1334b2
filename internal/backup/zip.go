package backup

import (
	"archive/zip"
	"fmt"
	"os"
)

// zipSnapshot writes a zip file at outputPath containing a single
// entry named entryName holding the database snapshot.
// A partially written zip file is removed on error.
func zipSnapshot(outputPath, entryName string, database Snapshotter) (err error) {
	const perm = 0o600
	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("creating zip file: %w", err)
	}

	err = writeZip(file, entryName, database)
	closeErr := file.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("closing zip file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(outputPath)
		return err
	}
	return nil
}

func writeZip(file *os.File, entryName string, database Snapshotter) (err error) {
	zipWriter := zip.NewWriter(file)
	entryWriter, err := zipWriter.CreateHeader(&zip.FileHeader{
		Name:   entryName,
		Method: zip.Deflate,
	})
	if err != nil {
		_ = zipWriter.Close()
		return fmt.Errorf("creating zip entry: %w", err)
	}

	_, err = database.WriteTo(entryWriter)
	if err != nil {
		_ = zipWriter.Close()
		return fmt.Errorf("writing database snapshot: %w", err)
	}

	err = zipWriter.Close()
	if err != nil {
		return fmt.Errorf("finalizing zip file: %w", err)
	}
	return nil
}
