// Package errors defines the typed failure values shared by every fallible
// operation in the theme switcher. Each kind is a distinct struct so callers
// can branch with errors.As instead of matching message strings.
package errors

import "fmt"

// FileNotFoundError indicates a required file does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

// NewFileNotFoundError constructs a FileNotFoundError.
func NewFileNotFoundError(path string, err error) error {
	return &FileNotFoundError{Path: path, Err: err}
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Unwrap exposes the underlying error.
func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// FileIsDirectoryError indicates a path expected to be a file is a directory.
type FileIsDirectoryError struct {
	Path string
}

// NewFileIsDirectoryError constructs a FileIsDirectoryError.
func NewFileIsDirectoryError(path string) error {
	return &FileIsDirectoryError{Path: path}
}

func (e *FileIsDirectoryError) Error() string {
	return fmt.Sprintf("expected a file but found a directory: %s", e.Path)
}

// DirectoryIsFileError indicates a path expected to be a directory is a file.
type DirectoryIsFileError struct {
	Path string
}

// NewDirectoryIsFileError constructs a DirectoryIsFileError.
func NewDirectoryIsFileError(path string) error {
	return &DirectoryIsFileError{Path: path}
}

func (e *DirectoryIsFileError) Error() string {
	return fmt.Sprintf("expected a directory but found a file: %s", e.Path)
}

// DirectoryNotAccessibleError indicates a directory cannot be statted or read.
type DirectoryNotAccessibleError struct {
	Path string
	Err  error
}

// NewDirectoryNotAccessibleError constructs a DirectoryNotAccessibleError.
func NewDirectoryNotAccessibleError(path string, err error) error {
	return &DirectoryNotAccessibleError{Path: path, Err: err}
}

func (e *DirectoryNotAccessibleError) Error() string {
	return fmt.Sprintf("directory not accessible: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DirectoryNotAccessibleError) Unwrap() error {
	return e.Err
}

// FileNotReadableError indicates a file exists but its content could not be
// read or decoded.
type FileNotReadableError struct {
	Path string
	Err  error
}

// NewFileNotReadableError constructs a FileNotReadableError.
func NewFileNotReadableError(path string, err error) error {
	return &FileNotReadableError{Path: path, Err: err}
}

func (e *FileNotReadableError) Error() string {
	return fmt.Sprintf("file not readable: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FileNotReadableError) Unwrap() error {
	return e.Err
}

// FileNotTOMLError indicates a configuration file without the .toml extension.
type FileNotTOMLError struct {
	Path string
}

// NewFileNotTOMLError constructs a FileNotTOMLError.
func NewFileNotTOMLError(path string) error {
	return &FileNotTOMLError{Path: path}
}

func (e *FileNotTOMLError) Error() string {
	return fmt.Sprintf("not a TOML file: %s", e.Path)
}

// ThemeNotTOMLError indicates a matched theme file without the .toml extension.
type ThemeNotTOMLError struct {
	Path string
}

// NewThemeNotTOMLError constructs a ThemeNotTOMLError.
func NewThemeNotTOMLError(path string) error {
	return &ThemeNotTOMLError{Path: path}
}

func (e *ThemeNotTOMLError) Error() string {
	return fmt.Sprintf("theme is not a TOML file: %s", e.Path)
}

// ThemeNotFoundError indicates no known theme matched the requested name.
type ThemeNotFoundError struct {
	Name string
}

// NewThemeNotFoundError constructs a ThemeNotFoundError.
func NewThemeNotFoundError(name string) error {
	return &ThemeNotFoundError{Name: name}
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("theme not found: %s", e.Name)
}

// NoThemesFoundError indicates a themes directory with zero qualifying files.
type NoThemesFoundError struct {
	Dir string
}

// NewNoThemesFoundError constructs a NoThemesFoundError.
func NewNoThemesFoundError(dir string) error {
	return &NoThemesFoundError{Dir: dir}
}

func (e *NoThemesFoundError) Error() string {
	return fmt.Sprintf("no themes found in %s", e.Dir)
}

// BackupError indicates the pre-apply backup copy failed. The live
// configuration is untouched when this is returned.
type BackupError struct {
	Path string
	Err  error
}

// NewBackupError constructs a BackupError wrapping the I/O cause.
func NewBackupError(path string, err error) error {
	return &BackupError{Path: path, Err: err}
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("backup failed: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// WriteError indicates serializing or writing the configuration failed.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError wrapping the I/O cause.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// DeleteError indicates a file deletion failed during a batch clear.
type DeleteError struct {
	Path string
	Err  error
}

// NewDeleteError constructs a DeleteError wrapping the I/O cause.
func NewDeleteError(path string, err error) error {
	return &DeleteError{Path: path, Err: err}
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete failed: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DeleteError) Unwrap() error {
	return e.Err
}

// RemoteError wraps any failure reported by the remote theme source. The
// core treats these as opaque; Op names the remote operation for reporting.
type RemoteError struct {
	Op  string
	Err error
}

// NewRemoteError constructs a RemoteError.
func NewRemoteError(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// SettingsError indicates the tool settings file could not be loaded or did
// not validate.
type SettingsError struct {
	Path string
	Err  error
}

// NewSettingsError constructs a SettingsError.
func NewSettingsError(path string, err error) error {
	return &SettingsError{Path: path, Err: err}
}

func (e *SettingsError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("settings error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("settings error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}
