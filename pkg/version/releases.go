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

// Named releases of the system under test. Test suites reference these
// by name instead of re-parsing literal strings, and each minor series
// carries a Latest alias so upgrade scenarios can track point releases
// without editing every gate.
var (
	// DevBranch is the development build, resolved from the current
	// build version at package init.
	DevBranch = MustParse(Dev)

	// 2.7.x releases
	V2_7_6    = MustParse("2.7.6")
	Latest2_7 = V2_7_6

	// 2.8.x releases
	V2_8_0    = MustParse("2.8.0")
	V2_8_1    = MustParse("2.8.1")
	Latest2_8 = V2_8_1

	// 2.9.x releases
	V2_9_0    = MustParse("2.9.0")
	V2_9_1    = MustParse("2.9.1")
	Latest2_9 = V2_9_1

	// 2.10.x releases
	V2_10_0    = MustParse("2.10.0")
	Latest2_10 = V2_10_0

	// Latest is the most recent released version.
	Latest = Latest2_10
)
