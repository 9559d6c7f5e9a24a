// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// must panics if err is not nil. It keeps table literals short.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
