package mocks

import (
	"os"
	"time"
)

// FS answers every call with Info, Data and Err. Wd is returned by Getwd.
type FS struct {
	Info FileInfo
	Data []byte
	Wd   string
	Err  error
}

func (fs FS) Open(name string) (*os.File, error)    { return nil, fs.Err }
func (fs FS) Stat(name string) (os.FileInfo, error) { return fs.Info, fs.Err }
func (fs FS) ReadFile(name string) ([]byte, error)  { return fs.Data, fs.Err }
func (fs FS) Getwd() (string, error)                { return fs.Wd, fs.Err }

type FileInfo struct {
	IsDirValue bool
}

func (m FileInfo) IsDir() bool        { return m.IsDirValue }
func (m FileInfo) ModTime() time.Time { return time.Now() }
func (m FileInfo) Mode() os.FileMode  { return 0 }
func (m FileInfo) Name() string       { return "" }
func (m FileInfo) Size() int64        { return 1 }
func (m FileInfo) Sys() interface{}   { return nil }
