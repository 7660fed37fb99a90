package pkg

import (
	"fmt"
	"os"
)

// CheckFileExist reports whether filePath exists.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckInputFile checks that filePath is set, exists and is not a directory.
func CheckInputFile(filePath string) error {
	if len(filePath) == 0 {
		return fmt.Errorf("no input file path")
	}
	exist, err := CheckFileExist(filePath)
	if err != nil {
		return fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return fmt.Errorf("input file %s not exist", filePath)
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", filePath)
	}
	return nil
}
