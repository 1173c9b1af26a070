// Package license validates PCTL license keys and gates Pro-only features.
//
// Keys are verified offline: the last segment of a PCTL-XXXX-XXXX-XXXX key is
// a checksum of the two body segments, so no license server is involved.
// The current license is read from the PROMPTCTL_LICENSE environment variable;
// an absent or invalid key silently degrades to the free tier.
package license
