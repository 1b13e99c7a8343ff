package dockerfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cruciblehq/foundry/internal/pipeline"
)

// Renders the pipeline as a Dockerfile.
//
// Stages appear in declaration order, separated by a blank line, each
// preceded by its comment. Every action renders as exactly one
// instruction. Fails only on an action variant the renderer does not
// know.
func Render(p *pipeline.Pipeline) ([]byte, error) {
	var buf bytes.Buffer

	for i, stage := range p.Stages {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := renderStage(&buf, stage); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Writes one stage: comment lines, the FROM instruction, then one
// instruction per action.
func renderStage(buf *bytes.Buffer, stage pipeline.Stage) error {
	for _, line := range commentLines(stage.Comment) {
		buf.WriteString("# " + line + "\n")
	}

	buf.WriteString("FROM " + stage.Base)
	if stage.Name != "" {
		buf.WriteString(" AS " + stage.Name)
	}
	buf.WriteByte('\n')

	for _, action := range stage.Actions {
		instr, err := instruction(action)
		if err != nil {
			return fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		buf.WriteString(instr + "\n")
	}

	return nil
}

// Encodes a single action as a Dockerfile instruction.
func instruction(action pipeline.Action) (string, error) {
	switch a := action.(type) {
	case pipeline.InstallPackages:
		return "RUN yum install -y " + strings.Join(a.Packages, " ") + " && yum clean all", nil

	case pipeline.SetEnv:
		return "ENV " + a.Key + "=" + a.Value, nil

	case pipeline.Run:
		return "RUN " + a.Command, nil

	case pipeline.Copy:
		if a.From != "" {
			return "COPY --from=" + a.From + " " + a.Source + " " + a.Dest, nil
		}
		return "COPY " + a.Source + " " + a.Dest, nil

	case pipeline.Workdir:
		return "WORKDIR " + a.Path, nil

	case pipeline.Entrypoint:
		argv, err := json.Marshal(a.Argv)
		if err != nil {
			return "", err
		}
		return "ENTRYPOINT " + string(argv), nil

	case pipeline.Expose:
		ports := make([]string, len(a.Ports))
		for i, port := range a.Ports {
			ports[i] = strconv.Itoa(port)
		}
		return "EXPOSE " + strings.Join(ports, " "), nil

	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

// Splits a stage comment into lines, dropping a trailing newline.
func commentLines(comment string) []string {
	if comment == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(comment, "\n"), "\n")
}
