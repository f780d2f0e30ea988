package predict

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultQueries is the built-in evaluation query set.
var DefaultQueries = []string{
	"Looking to hire mid-level professionals who are proficient in Python, SQL and Java Script. Need an assessment package that can test all skills with max duration of 60 minutes.",
	"Job Description... Can you recommend some assessment that can help me screen applications. Time limit is less than 30 minutes",
	"I am hiring for an analyst and wants applications to screen using Cognitive and personality tests, what options are available within 45 mins.",
	"I have a JD Job Description... I am looking for a cognitive assessment that can be completed in less than an hour.",
	"Job Description... I am looking for an Assessment which covers Python, SQL, Tableau and can be completed in 60 minutes.",
	"I am looking to hire a Senior Data Analyst with 5 years of experience and expertise in SQL, Excel and Python. The assessment can be 1-2 hour long.",
	"I am hiring for an HR Specialist who is responsible for providing expert advice to employees on HR policies and procedures. Can you suggest an assessment package to screen candidates for this role?",
	"I have to hire a high volume of candidates for a Customer Service Representative position... What is the best test package I can use?",
	"I have a JD for an IT Help Desk Analyst... What is an ideal assessment package with a maximum duration of 1 hour to test candidates?",
}

// ReadQueries reads one query per line. Blank lines and lines starting
// with '#' are skipped.
func ReadQueries(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return out, nil
}
