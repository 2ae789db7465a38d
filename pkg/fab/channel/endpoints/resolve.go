/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoints

import (
	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

// Resolve turns a list of targets into endpoints of the registry's capability.
// targets must be a []interface{}, []string or []fab.Endpoint. A string element
// is looked up by name; an endpoint element must carry the registry's capability
// but need not be registered. Order and duplicates are preserved and the first
// invalid element fails the whole resolution.
func (r *Registry) Resolve(targets interface{}) ([]fab.Endpoint, error) {
	var elements []interface{}
	switch t := targets.(type) {
	case []interface{}:
		elements = t
	case []string:
		elements = make([]interface{}, len(t))
		for i, name := range t {
			elements[i] = name
		}
	case []fab.Endpoint:
		elements = make([]interface{}, len(t))
		for i, endpoint := range t {
			elements[i] = endpoint
		}
	default:
		return nil, status.Errorf(status.TargetsInvalid, "%s targets must be an array, got %T", r.capability, targets)
	}

	results := make([]fab.Endpoint, 0, len(elements))
	for _, element := range elements {
		endpoint, err := r.resolveOne(element)
		if err != nil {
			return nil, err
		}
		results = append(results, endpoint)
	}
	return results, nil
}

func (r *Registry) resolveOne(target interface{}) (fab.Endpoint, error) {
	switch t := target.(type) {
	case string:
		endpoint, ok := r.Get(t)
		if !ok {
			return nil, status.Errorf(status.NotFound, "%s named %s not found", r.capability, t)
		}
		r.logger.Debugf("resolve - found %s %s", r.capability, t)
		return endpoint, nil
	case fab.Endpoint:
		if isNil(t) {
			return nil, status.Errorf(status.TargetsInvalid, "Target %s is not valid: %v", r.capability, target)
		}
		if t.Capability() != r.capability {
			return nil, status.Errorf(status.TypeMismatch, "Target %s is not a valid %s", t.Name(), r.capability)
		}
		return t, nil
	default:
		return nil, status.Errorf(status.TargetsInvalid, "Target %s is not valid: %v", r.capability, target)
	}
}
