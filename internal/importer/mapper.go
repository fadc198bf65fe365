// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/user-migrator/internal/types"
)

const customAttributePrefix = "custom:"

// attributes that map onto profile fields of the destination user
const (
	attrEmail         = "email"
	attrEmailVerified = "email_verified"
	attrPhone         = "phone_number"
	attrPhoneVerified = "phone_number_verified"
	attrName          = "name"
	attrGivenName     = "given_name"
	attrFamilyName    = "family_name"
)

// Mapper turns source users into destination creation requests. It holds
// no state besides the validator and is safe to reuse.
type Mapper struct {
	validate *validator.Validate
}

// Map builds the MigrationRecord for u. When schema is not empty only the
// attributes it declares are carried over.
func (m *Mapper) Map(u *types.SourceUser, schema map[string]struct{}) (*types.MigrationRecord, error) {
	if u == nil {
		return nil, types.NewInvalidRecordError("", "missing user")
	}
	if u.ID == "" {
		return nil, types.NewInvalidRecordError(u.Username, "missing source identifier")
	}

	r := new(types.MigrationRecord)
	r.SourceID = u.ID
	r.CustomAttributes = make(map[string]any)

	for name, value := range u.Attributes {
		if name == subAttribute || !declared(schema, name) {
			continue
		}

		switch name {
		case attrEmail:
			r.Email = value
		case attrPhone:
			r.Phone = value
		case attrEmailVerified:
			r.VerifiedEmail = toBool(value)
		case attrPhoneVerified:
			r.VerifiedPhone = toBool(value)
		case attrName:
			r.DisplayName = value
		case attrGivenName:
			r.GivenName = value
		case attrFamilyName:
			r.FamilyName = value
		default:
			r.CustomAttributes[strings.TrimPrefix(name, customAttributePrefix)] = value
		}
	}

	// the traceability pair is written last so a custom attribute with the
	// same name cannot shadow it
	r.CustomAttributes[types.TraceabilityAttribute] = u.ID
	if u.Username != "" {
		r.CustomAttributes[types.SourceUsernameAttribute] = u.Username
	}

	r.LoginID = u.Username
	if r.LoginID == "" {
		r.LoginID = r.Email
	}
	if r.LoginID == "" {
		return nil, types.NewInvalidRecordError(u.ID, "no username or email to use as login identifier")
	}
	if r.DisplayName == "" {
		r.DisplayName = r.LoginID
	}

	r.Roles = dedup(u.Groups)

	if err := m.validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, types.NewInvalidRecordError(u.ID, fmt.Sprintf("field %s failed %s", verrs[0].Field(), verrs[0].Tag()))
		}
		return nil, types.NewInvalidRecordError(u.ID, err.Error())
	}

	return r, nil
}

func declared(schema map[string]struct{}, name string) bool {
	if len(schema) == 0 {
		return true
	}
	_, ok := schema[name]
	return ok
}

func toBool(v string) *bool {
	b := strings.EqualFold(v, "true")
	return &b
}

func dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	m := new(Mapper)
	m.validate = validator.New(validator.WithRequiredStructEnabled())

	return m
}
