// Package truncate bounds model-reply text for previews and fallbacks.
package truncate
