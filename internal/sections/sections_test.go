package sections

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resume = `Jane Doe
jane@example.com

TECHNICAL SKILLS:
Go, Kubernetes, Terraform

Work Experience
Built payment services at Acme.
   Led the on-call rotation.

Personal Projects
- Open source log shipper

Skills (again)
PostgreSQL`

func nonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func TestExtractAssignsLinesToSections(t *testing.T) {
	set := Extract(resume)

	require.Len(t, set, 4)
	assert.Equal(t, "Jane Doe jane@example.com ", set[Other])
	assert.Equal(t, "TECHNICAL SKILLS: Go, Kubernetes, Terraform Skills (again) PostgreSQL ", set[Skills])
	assert.Equal(t, "Work Experience Built payment services at Acme.    Led the on-call rotation. ", set[Experience])
	assert.Equal(t, "Personal Projects - Open source log shipper ", set[Projects])
}

func TestExtractPreservesNonBlankCharacters(t *testing.T) {
	inputs := []string{
		"",
		"\n\n   \n",
		resume,
		"skills\r\nGo\r\n\r\nexperience\r\nnone",
		"---\n***\nprojects!!!\n  x  ",
		"Опыт работы\nnaïve café experience",
	}

	for _, in := range inputs {
		set := Extract(in)
		total := 0
		for _, l := range Labels {
			total += nonSpace(set[l])
		}
		assert.Equal(t, nonSpace(in), total, "input %q", in)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	set := Extract("")
	for _, l := range Labels {
		text, ok := set[l]
		assert.True(t, ok, "label %s missing", l)
		assert.Empty(t, text)
	}
}

func TestExtractHeaderPriority(t *testing.T) {
	// "skills" is checked before "experience".
	set := Extract("Skills and Experience\nGo")
	assert.Equal(t, "Skills and Experience Go ", set[Skills])
	assert.True(t, set.Empty(Experience))
}

func TestFullJoinsInLabelOrder(t *testing.T) {
	set := Set{Skills: "a ", Experience: "b ", Projects: "c ", Other: "d "}
	assert.Equal(t, "a  b  c  d ", set.Full())
}

func TestExtractSplitsAnyLineBreak(t *testing.T) {
	lf := Extract(resume)

	for name, sep := range map[string]string{"crlf": "\r\n", "cr": "\r", "line separator": "\u2028"} {
		t.Run(name, func(t *testing.T) {
			set := Extract(strings.ReplaceAll(resume, "\n", sep))
			assert.Equal(t, lf, set)
			assert.Contains(t, set[Experience], "Built payment services")
		})
	}
}

func TestWeightsSumToOne(t *testing.T) {
	cases := map[string]Set{
		"both present":    Extract("experience\nAcme\nprojects\nTool"),
		"only experience": Extract("experience\nAcme"),
		"only projects":   Extract("projects\nTool"),
		"neither":         Extract("just a name"),
		"empty":           Extract(""),
	}

	for name, set := range cases {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 1.0, Weights(set).Sum(), 1e-9)
		})
	}
}

func TestWeightsRedistribution(t *testing.T) {
	tests := []struct {
		name string
		text string
		want WeightVector
	}{
		{
			name: "both present",
			text: "experience\nAcme\nprojects\nTool",
			want: WeightVector{Skills: 0.10, Experience: 0.50, Projects: 0.30, Other: 0.10},
		},
		{
			name: "experience missing",
			text: "projects\nTool",
			want: WeightVector{Skills: 0.10, Experience: 0, Projects: 0.80, Other: 0.10},
		},
		{
			name: "projects missing",
			text: "experience\nAcme",
			want: WeightVector{Skills: 0.10, Experience: 0.80, Projects: 0, Other: 0.10},
		},
		{
			name: "both missing",
			text: "Jane Doe",
			want: WeightVector{Skills: 0.10, Experience: 0.50, Projects: 0.30, Other: 0.10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weights(Extract(tt.text))
			for _, l := range Labels {
				assert.InDelta(t, tt.want[l], got[l], 1e-9, "label %s", l)
			}
		})
	}
}

func TestWeightsNeverTouchSkillsOrOther(t *testing.T) {
	// Empty skills keep their weight.
	got := Weights(Extract("experience\nAcme"))
	assert.InDelta(t, 0.10, got[Skills], 1e-9)
	assert.InDelta(t, 0.10, got[Other], 1e-9)
}

func TestBaseWeightsReturnsCopy(t *testing.T) {
	w := BaseWeights()
	w[Skills] = 1
	assert.InDelta(t, 0.10, BaseWeights()[Skills], 1e-9)
}
