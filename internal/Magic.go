/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package internal

// StreamMagic identifies a wire-encoded rANS word stream, read as a
// little-endian uint32 at the start of every stream produced by
// wire.Encode: the bytes "R", "A", "N", "S". Files written by
// `ranscodec encode` carry a 4-byte symbol count before that stream.
const StreamMagic = uint32('R') | uint32('A')<<8 | uint32('N')<<16 | uint32('S')<<24
