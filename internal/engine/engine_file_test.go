package engine

import (
	"bufio"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/tsatke/calc/internal/engine/value"
)

func (suite *EvaluatorSuite) TestUnaryFiles() {
	suite.runFileTests("unary", []string{
		"unary01.calc",
	})
}

func (suite *EvaluatorSuite) TestBinaryFiles() {
	suite.runFileTests("binary", []string{
		"binary01.calc",
		"binary02.calc",
		"binary03.calc",
	})
}

// outcome is either a result value or the category of the error that was
// returned instead.
type outcome struct {
	Result value.Value
	Err    string
}

func (suite *EvaluatorSuite) runFileTests(basePath string, files []string) {
	for _, file := range files {
		suite.Run("file="+file, func() {
			f, err := suite.testdata.Open(filepath.Join(basePath, file))
			suite.Require().NoError(err)
			defer func() { _ = f.Close() }()

			scanner := bufio.NewScanner(f)
			line := 0
			for scanner.Scan() {
				line++
				text := strings.TrimSpace(scanner.Text())
				if text == "" || strings.HasPrefix(text, "#") {
					continue
				}

				name, operands, want := suite.parseLine(text)
				result, err := EvaluateNamed(name, operands...)
				got := outcome{Result: result, Err: category(err)}

				if diff := cmp.Diff(want, got); diff != "" {
					suite.Failf("unexpected outcome", "%s:%d: %s\n%s", file, line, text, diff)
				}
			}
			suite.NoError(scanner.Err())
		})
	}
}

func (suite *EvaluatorSuite) parseLine(text string) (string, []value.Value, outcome) {
	parts := strings.SplitN(text, "=>", 2)
	suite.Require().Len(parts, 2, "missing '=>' in %q", text)

	fields := strings.Fields(parts[0])
	suite.Require().NotEmpty(fields, "missing operator in %q", text)

	var operands []value.Value
	for _, field := range fields[1:] {
		operands = append(operands, suite.parseValue(field))
	}

	want := strings.TrimSpace(parts[1])
	if strings.HasPrefix(want, "error:") {
		return fields[0], operands, outcome{Err: strings.TrimPrefix(want, "error:")}
	}
	return fields[0], operands, outcome{Result: suite.parseValue(want)}
}

func (suite *EvaluatorSuite) parseValue(text string) value.Value {
	if text == "none" {
		return value.None
	}

	parts := strings.SplitN(text, ":", 2)
	suite.Require().Len(parts, 2, "malformed value %q", text)
	magnitude, err := strconv.ParseFloat(parts[1], 64)
	suite.Require().NoError(err)

	switch parts[0] {
	case "int":
		return value.NewNumber(value.KindInteger, magnitude)
	case "float":
		return value.NewNumber(value.KindFloat, magnitude)
	}
	suite.FailNowf("unknown kind", "%q", parts[0])
	return nil
}

func category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrOperator):
		return "operator"
	case errors.Is(err, ErrArity):
		return "arity"
	}
	return err.Error()
}
