package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `version: "1"
title: Landing
root:
  type: Grid
  children:
    - type: Row
      props:
        gutter: 20
        justify: space-between
        align: middle
      children:
        - type: Column
          props:
            span: 8
            offset: 4
          children:
            - type: Text
              props:
                content: Hello
        - type: Column
          props:
            span: 12
          children:
            - type: Button
              id: cta
              props:
                text: Go
                variant: primary
`

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
