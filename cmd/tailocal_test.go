package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/karasz/gtleap/leapsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTAILocal(t *testing.T) {
	mp := make(map[string]string)
	mp["@40000000433225833b6e1a8c"] = "2005-09-22 03:30:43.9970715 +0000 UTC"
	mp["@40000000433225833b6e2644"] = "2005-09-22 03:30:43.9970745 +0000 UTC"
	mp["@40000000433225840c85ba04"] = "2005-09-22 03:30:44.2100905 +0000 UTC"
	mp["@40000000433225840c8f0cbc"] = "2005-09-22 03:30:44.2107015 +0000 UTC"
	mp["@40000000433225852a9ada4c"] = "2005-09-22 03:30:45.7147915 +0000 UTC"
	mp["@"] = "@"
	mp["@452452"] = "@452452"
	mp["@40000000gsdf fgsfdgsfdg"] = "@40000000gsdf fgsfdgsfdg"
	mp["@400000005A848EAD"] = "2018-02-14 19:31:20 +0000 UTC"
	mp["@40000000586846A4"] = "2016-12-31 23:59:60 +0000 UTC"
	mp["@40000000586846A5"] = "2017-01-01 00:00:00 +0000 UTC"
	mp["@40000000586846a41dcd6500 sshd: accepted"] = "2016-12-31 23:59:60.5 +0000 UTC sshd: accepted"
	mp["no label here"] = "no label here"
	// nanoseconds out of range fall back to the TAI64 prefix
	mp["@40000000586846A4FFFFFFFF"] = "2016-12-31 23:59:60 +0000 UTCFFFFFFFF"

	rules := leapsec.System()
	for i, k := range mp {
		if z := processline(rules, i); z != k {
			t.Errorf("Line %s was translated to %s instead of %s", i, z, k)
		}
	}
}

func TestProcessInputStream(t *testing.T) {
	in := "@40000000586846A3 one\n@40000000586846A4 two\n@40000000586846A5 three"
	var out bytes.Buffer
	w := bufio.NewWriter(&out)

	err := processInputStream(leapsec.System(), bufio.NewReader(strings.NewReader(in)), w)
	require.NoError(t, err)
	assert.Equal(t,
		"2016-12-31 23:59:59 +0000 UTC one\n"+
			"2016-12-31 23:59:60 +0000 UTC two\n"+
			"2017-01-01 00:00:00 +0000 UTC three",
		out.String())
}
