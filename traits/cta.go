// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/dotcom/core"
)

// CTAType is the type of a call to action. It determines the affordance
// an element renders.
type CTAType int32

const (
	// CTARegular is a regular link. It is the default, and the
	// fallback for unknown values.
	CTARegular CTAType = iota

	// CTALocal is a link to another page of the same site.
	CTALocal

	// CTAJump is a link to an anchor on the same page.
	CTAJump

	// CTAExternal is a link to another site, opened in a new window.
	CTAExternal

	// CTADownload is a link to a file to download.
	CTADownload

	// CTAVideo plays a video.
	CTAVideo

	// CTATypeN is the number of CTA types.
	CTATypeN
)

// CTATypeProperty is the property name of [CTA.CTAType].
const CTATypeProperty = "ctaType"

var _CTATypeValues = []CTAType{CTARegular, CTALocal, CTAJump, CTAExternal, CTADownload, CTAVideo}

var _CTATypeNames = map[CTAType]string{
	CTARegular:  "regular",
	CTALocal:    "local",
	CTAJump:     "jump",
	CTAExternal: "external",
	CTADownload: "download",
	CTAVideo:    "video",
}

var _CTATypeNameToValueMap = map[string]CTAType{
	"regular":  CTARegular,
	"local":    CTALocal,
	"jump":     CTAJump,
	"external": CTAExternal,
	"download": CTADownload,
	"video":    CTAVideo,
}

var _CTATypeDescMap = map[CTAType]string{
	CTARegular:  "CTARegular is a regular link. It is the default, and the fallback for unknown values.",
	CTALocal:    "CTALocal is a link to another page of the same site.",
	CTAJump:     "CTAJump is a link to an anchor on the same page.",
	CTAExternal: "CTAExternal is a link to another site, opened in a new window.",
	CTADownload: "CTADownload is a link to a file to download.",
	CTAVideo:    "CTAVideo plays a video.",
}

var ctaTypeIcons = [CTATypeN]string{"arrow-right", "arrow-right", "arrow-down", "launch", "download", "play"}

// String returns the string representation of this CTAType value,
// which is its attribute form.
func (i CTAType) String() string {
	if str, ok := _CTATypeNames[i]; ok {
		return str
	}
	return "CTAType(" + strconv.FormatInt(int64(i), 10) + ")"
}

// SetString sets the CTAType value from its string representation,
// case insensitively. It returns an error and sets [CTARegular]
// if the string is invalid.
func (i *CTAType) SetString(s string) error {
	if val, ok := _CTATypeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _CTATypeNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = val
		return nil
	}
	*i = CTARegular
	return fmt.Errorf("%q is not a valid value for type CTAType", s)
}

// Int64 returns the CTAType value as an int64.
func (i CTAType) Int64() int64 { return int64(i) }

// SetInt64 sets the CTAType value from an int64.
func (i *CTAType) SetInt64(in int64) { *i = CTAType(in) }

// Desc returns the description of the CTAType value.
func (i CTAType) Desc() string {
	if str, ok := _CTATypeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// CTATypeValues returns all possible values for the type CTAType.
func CTATypeValues() []CTAType { return _CTATypeValues }

// Values returns all possible values for the type CTAType.
func (i CTAType) Values() []CTAType { return _CTATypeValues }

// Strings returns the string representations of all possible
// values for the type CTAType, in the order of [CTATypeValues].
func (i CTAType) Strings() []string {
	strs := make([]string, len(_CTATypeValues))
	for j, v := range _CTATypeValues {
		strs[j] = _CTATypeNames[v]
	}
	return strs
}

// IsValid returns whether the value is a valid option for type CTAType.
func (i CTAType) IsValid() bool {
	_, ok := _CTATypeNames[i]
	return ok
}

// Or returns the value, or [CTARegular] if it is not a valid option.
func (i CTAType) Or() CTAType {
	if !i.IsValid() {
		return CTARegular
	}
	return i
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i CTAType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *CTAType) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// CTA is a trait that adds a call to action type to an element.
type CTA struct {

	// CTAType is the type of the call to action.
	CTAType CTAType

	host *core.ElementBase
}

// Apply implements [Trait]. It binds the reflected cta-type attribute.
func (t *CTA) Apply(host core.Element) {
	t.host = host.AsElement()
	t.host.Props.Define(core.Property{
		Name:      CTATypeProperty,
		Attribute: "cta-type",
		Reflect:   true,
		Get: func() (string, bool) {
			return t.CTAType.Or().String(), true
		},
		Set: func(value string, present bool) {
			var ct CTAType
			if present {
				if err := ct.SetString(value); err != nil {
					slog.Debug("traits.CTA: falling back to regular", "value", value, "err", err)
				}
			}
			t.SetCTAType(ct)
		},
	})
	t.host.RequestUpdate(CTATypeProperty)
}

// SetCTAType sets [CTA.CTAType].
func (t *CTA) SetCTAType(v CTAType) {
	core.SetValue(t.host, &t.CTAType, CTATypeProperty, v)
}

// LinkTarget returns the target window of the link, which is
// "_blank" for external links and "" otherwise.
func (t *CTA) LinkTarget() string {
	if t.CTAType == CTAExternal {
		return "_blank"
	}
	return ""
}

// IconName returns the name of the icon for the type.
func (t *CTA) IconName() string {
	return ctaTypeIcons[t.CTAType.Or()]
}

// Download returns whether the link downloads its target.
func (t *CTA) Download() bool {
	return t.CTAType == CTADownload
}

// IsVideo returns whether the call to action plays a video.
func (t *CTA) IsVideo() bool {
	return t.CTAType == CTAVideo
}
