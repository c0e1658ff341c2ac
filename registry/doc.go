/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package registry makes declared justifications discoverable inside the
// running binary.
//
// Go has no macro layer, so a derived justification bound to a package-level
// variable is ordinary data the source text alone cannot fully reconstruct
// (the derivation chain only exists after evaluation). Declare closes that
// gap: it records the fully-derived record together with its declaration
// site during package initialization, and returns the record unchanged so it
// can initialize the variable it annotates:
//
//	var fancyNetworkDriver = registry.Declare(
//	    unsafety.ImplementsDeviceDriver.
//	        Bug("https://bugs.example.com/1234").
//	        Owner("foo"))
//
// Registration happens at program load only. The wrapped code path — the
// region executed under unsafety.Because — never touches the registry, so
// annotated code keeps running exactly as written.
//
// Audit tooling that runs in-process (or a test binary built for the target
// repo) calls Entries to enumerate every declared site. Tooling that walks
// source text instead does not need this package at all.
package registry
