package gen

import "fmt"

// Pools holds the value pools every synthetic field is drawn from.
type Pools struct {
	SrcNet          string
	DestNet         string
	Signatures      []string
	Categories      []string
	FileNames       []string
	Users           []string
	SeverityWeights map[string]float64
	StatusWeights   map[string]float64
}

// UserPool builds n synthetic account names of the form DOMAIN\userNNN.
func UserPool(domain string, n int) []string {
	if n <= 0 {
		return nil
	}
	users := make([]string, n)
	for i := range users {
		users[i] = fmt.Sprintf("%s\\user%03d", domain, i+1)
	}
	return users
}
