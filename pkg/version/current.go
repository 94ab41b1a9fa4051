// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

// current is the version of the release line under development, used to
// resolve the dev sentinel. The ".dev" suffix and anything after it is
// truncated during resolution, so the default below resolves to 2.11.0.
//
// Overridden during build with ldflags, or at startup with SetCurrent
// when packaging metadata supplies a different value.
var current = "2.11.0.dev0"

// Current returns the process-wide current build version string used to
// resolve the dev sentinel.
func Current() string {
	return current
}

// SetCurrent overrides the process-wide current build version. Call it
// once during startup, before any dev version is parsed; the release
// catalog in this package is resolved at package init with the default.
func SetCurrent(s string) {
	current = s
}
