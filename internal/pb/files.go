// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package pb

import "net/url"

// FileURL builds the same-origin proxy path for a record file:
// /api/files/{collectionId}/{recordId}/{filename}. Templates use this so
// browsers never talk to the backend directly.
func FileURL(collectionID, recordID, filename string) string {
	if collectionID == "" || recordID == "" || filename == "" {
		return ""
	}
	return "/api/files/" + url.PathEscape(collectionID) + "/" + url.PathEscape(recordID) + "/" + url.PathEscape(filename)
}

// ThumbURL is FileURL with a backend thumbnail-size query parameter.
func ThumbURL(collectionID, recordID, filename, size string) string {
	base := FileURL(collectionID, recordID, filename)
	if base == "" || size == "" {
		return base
	}
	return base + "?thumb=" + url.QueryEscape(size)
}
