package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword e isTerminal permitem trocar o terminal nos testes
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText mostra o prompt e lê uma linha. Com EOF depois de algum texto,
// a linha parcial é devolvida.
//
//	Prompt
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// GetDefaultText é como GetSimpleText, mas Enter sem texto mantém current
func GetDefaultText(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	value, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// GetPassword lê a senha do terminal sem eco
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}

	return pw, nil
}

// GetSecret usa GetPassword quando a entrada é um terminal e cai para uma
// linha comum quando a entrada vem de um pipe
func GetSecret(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return GetSimpleText(reader, prompt, w)
	}

	pw, err := GetPassword(prompt, w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}

// Confirm aceita "s", "sim", "y" e "yes"
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" (s/n)", w)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
