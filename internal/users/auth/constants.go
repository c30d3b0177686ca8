// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTTL is how long a session token authenticates after sign-in.
	SessionTTL = 8 * time.Hour

	// DOBLayout is the accepted date-of-birth format on sign-up.
	DOBLayout = "2006-01-02"

	// MinPasswordLength is enforced on sign-up only.
	MinPasswordLength = 8

	// MaxNameLength bounds every free-text profile field except AboutMe.
	MaxNameLength = 100

	// MaxAboutMeLength bounds the AboutMe profile field.
	MaxAboutMeLength = 1000
)
