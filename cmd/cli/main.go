// Command cli is a small companion client for the Passport server: it signs
// an account up or logs in against the HTTP API, prompting for the password
// without echoing it.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	addr := flag.String("a", "http://localhost:8080", "server base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cli [-a url] signup|login")
		os.Exit(2)
	}

	action := flag.Arg(0)
	if action != "signup" && action != "login" {
		fmt.Fprintf(os.Stderr, "unknown action %q\n", action)
		os.Exit(2)
	}

	if err := run(*addr, action); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(addr, action string) error {
	reader := bufio.NewReader(os.Stdin)

	email, err := promptText(reader, "Enter email")
	if err != nil {
		return err
	}

	var name string
	if action == "signup" {
		name, err = promptText(reader, "Enter name")
		if err != nil {
			return err
		}
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	var body any
	if action == "signup" {
		body = signupRequest{Email: email, Password: string(password), Name: name}
	} else {
		body = loginRequest{Email: email, Password: string(password)}
	}

	return post(addr+"/auth/"+action, body)
}

func promptText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func post(url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", resp.Status, out)
	return nil
}
