package fs

import "os"

// Filesystem is the part of the OS the config loader and the CLI touch.
type Filesystem interface {
	Stat(string) (os.FileInfo, error)
	Open(string) (*os.File, error)
	ReadFile(string) ([]byte, error)
	Getwd() (string, error)
}

type OS struct{}

func (OS) Open(name string) (*os.File, error)    { return os.Open(name) }
func (OS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (OS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }
func (OS) Getwd() (string, error)                { return os.Getwd() }
