//go:build !windows

package config

const (
	defaultReplace        = "/exiftool_files/exiftool.pl"
	defaultLibraryPattern = "exiftool_files/libperl*.so*"
	defaultReferenceTool  = "perl"
)
