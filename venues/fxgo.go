/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package venues

import "github.com/chanchunyinjohnny/FxFixParser/dict"

// FXGO handles Bloomberg FXGO messages. FXGO sticks to standard FIX 4.4
// fields, so it carries no custom tag table.
type FXGO struct{}

func (*FXGO) Name() string { return "FXGO" }

func (*FXGO) SenderCompIDs() []string {
	return []string{"FXGO", "BLOOMBERG", "BBG", "BFXGO"}
}

func (*FXGO) CustomTags() []dict.Definition { return nil }
