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

// Package reason defines the annotations attached to a dresult.Result.
//
// A reason answers "why did this operation succeed or fail?" and carries:
//
//   - Kind: whether the reason marks a success or an error;
//   - Message: a human-readable explanation;
//   - Tags: an open key/value map of structured context.
//
// Two base concrete types are provided: Success and Error. Error implements
// the built-in error interface so it can flow through ordinary Go error
// handling. Richer error subtypes (such as Exception, which wraps an
// underlying Go error) may exist in memory, but on the wire every reason is
// structurally just {type, message, tags}: subtype identity does not survive
// a round trip through dresult/codec.
package reason
