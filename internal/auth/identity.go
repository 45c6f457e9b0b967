package auth

import "regexp"

var (
	orcidRe    = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{1,49}$`)
)

// ValidORCID reports whether id has the 0000-0000-0000-000X shape and a
// correct ISO 7064 11,2 check digit.
func ValidORCID(id string) bool {
	if !orcidRe.MatchString(id) {
		return false
	}
	total := 0
	for _, c := range id[:len(id)-1] {
		if c == '-' {
			continue
		}
		total = (total + int(c-'0')) * 2
	}
	check := (12 - total%11) % 11
	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	return id[len(id)-1] == want
}

// ValidUsername reports whether name is 2 to 50 characters of letters, digits,
// dots, dashes and underscores, starting with a letter or digit.
func ValidUsername(name string) bool {
	return usernameRe.MatchString(name)
}
