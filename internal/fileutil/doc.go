// Package fileutil holds small file helpers shared by the storage packages.
package fileutil
