package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/logger"
)

const monthPrompt = "Adjon meg egy hónapot (1-12): "

var ErrNoInput = errors.New("input ended before a valid month was given")

// Client talks to the user over a plain text stream.
type Client struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Client {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Client{in: sc, out: out}
}

// AskMonth keeps prompting until a whole number between 1 and 12 is read.
func (c *Client) AskMonth() (time.Month, error) {
	for {
		if _, err := fmt.Fprint(c.out, monthPrompt); err != nil {
			return 0, errors.Wrap(err, "write prompt")
		}
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, errors.Wrap(err, "read month")
			}
			return 0, ErrNoInput
		}

		token := c.in.Text()
		month, err := strconv.Atoi(token)
		if err != nil || month < 1 || month > 12 {
			logger.Debug("rejected month input", zap.String("input", token))
			continue
		}
		return time.Month(month), nil
	}
}

func (c *Client) SendMessage(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return errors.Wrap(err, "send message")
}

// Writer exposes the output stream for multi-line output such as reports.
func (c *Client) Writer() io.Writer {
	return c.out
}
