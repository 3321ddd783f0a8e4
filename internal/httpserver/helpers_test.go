// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"fmt"
	"regexp"

	"github.com/golang/mock/gomock"
)

var _ gomock.Matcher = (*regexMatcher)(nil)

type regexMatcher struct {
	regex *regexp.Regexp
}

func (r *regexMatcher) Matches(x interface{}) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	return r.regex.MatchString(s)
}

func (r *regexMatcher) String() string {
	return fmt.Sprintf("regular expression %s", r.regex.String())
}

func newRegexMatcher(regex string) *regexMatcher {
	return &regexMatcher{
		regex: regexp.MustCompile(regex),
	}
}
