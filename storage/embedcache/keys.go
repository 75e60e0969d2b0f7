// Copyright 2025 Arman Aubakirov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embedcache

import (
	"github.com/go-crypt/x/blake2b"
)

const keyPrefix = "emb:"

// keyDigestSize is the BLAKE2b digest length in bytes. 16 bytes keeps
// keys short while making collisions between distinct inputs negligible.
const keyDigestSize = 16

// makeKey derives the cache key for a (model, text) pair. The model name
// and text are separated by a NUL byte so that distinct pairs can never
// produce the same digest input.
func makeKey(model, text string) []byte {
	h, err := blake2b.New(keyDigestSize, nil)
	if err != nil {
		// Only reachable with an invalid digest size or key.
		panic(err)
	}
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))

	key := make([]byte, 0, len(keyPrefix)+keyDigestSize)
	key = append(key, keyPrefix...)
	return h.Sum(key)
}
