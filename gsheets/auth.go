package gsheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// authorize returns an HTTP client using the OAuth2 tokens previously saved by Authorise.
func authorize(ctx context.Context, credentials, tokens string) (*http.Client, error) {
	config, err := oauthConfig(credentials)
	if err != nil {
		return nil, err
	}

	file := tokensFile(credentials, tokens)
	token, err := tokenFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("no valid OAuth2 tokens in %v - run 'authorise' first (%w)", file, err)
	}

	return config.Client(ctx, token), nil
}

// Authorise requests the user to authorise access to the spreadsheet in a browser and
// paste the authorisation code back, then saves the tokens for later runs.
func Authorise(ctx context.Context, credentials, tokens string, in io.Reader, out io.Writer) (string, error) {
	config, err := oauthConfig(credentials)
	if err != nil {
		return "", err
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Fprintf(out, "Go to the following link in your browser then type the authorization code: \n%v\n", url)

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return "", fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	file := tokensFile(credentials, tokens)
	if err := saveToken(file, token); err != nil {
		return "", err
	}

	return file, nil
}

func oauthConfig(credentials string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, SHEETS)
}

func tokensFile(credentials, dir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(dir, fmt.Sprintf("%s.sheets", name))
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save OAuth2 token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
