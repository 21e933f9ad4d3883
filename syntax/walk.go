// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

// Walk visits every node under root in pre-order, children in source
// order, calling visit with the path from root down to the current node.
// If visit returns false the traversal stops; Walk then returns false.
//
// The *Path passed to visit is only valid for the duration of the call.
// Use [Path.Clone] to retain one. Traversal order is a function of the
// tree alone, so repeated walks of an unchanged tree visit nodes in the
// same order every time.
func Walk(root Node, visit func(*Path) bool) bool {
	if root == nil {
		return true
	}
	steps := make([]Step, 1, 16)
	steps[0] = Step{Node: root}
	return walk(steps, visit)
}

func walk(steps []Step, visit func(*Path) bool) bool {
	if !visit(&Path{steps: steps}) {
		return false
	}
	var counts [roleTotal]int
	parent := steps[len(steps)-1].Node
	for _, e := range parent.Edges() {
		idx := counts[e.Role]
		counts[e.Role]++
		if !walk(append(steps, Step{Node: e.Node, Role: e.Role, Index: idx}), visit) {
			return false
		}
	}
	return true
}
