// Package review runs structured code review through the API, over a file's
// content or the staged git diff.
package review
