/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package independent

import (
	"github.com/pkg/errors"
	"github.com/popsynth/binpop/internal"
)

var (
	// ErrUnknownModel is returned when a model name or value is not
	// one of the supported ones.
	ErrUnknownModel = errors.New("unknown model")

	// ErrUnsatisfiableMassRange is returned when the oversampling loop
	// gives up finding primary masses inside the requested window.
	ErrUnsatisfiableMassRange = errors.New("unsatisfiable mass-range constraint")

	// ErrInvalidInput is returned for malformed arguments.
	ErrInvalidInput = internal.MalformedInput
)

func unknownModel(axis string, model interface{}) error {
	return errors.Wrapf(ErrUnknownModel, "%s model %v", axis, model)
}
