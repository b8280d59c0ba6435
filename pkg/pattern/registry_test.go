package pattern_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lexcheck/pkg/pattern"
)

// samples holds one accepted input per validator.
var samples = map[pattern.Name]string{
	pattern.AlphaOnly:      "HelloWorld",
	pattern.AllLowercase:   "hello",
	pattern.AllUppercase:   "HELLO",
	pattern.EmailFormat:    "user.name+tag@example.co",
	pattern.USPhone:        "123-456-7890",
	pattern.DateMMDDYYYY:   "02/30/2023",
	pattern.PostalCode:     "12345",
	pattern.HexColor:       "#FFFFFF",
	pattern.Time24h:        "9:05",
	pattern.ValidUsername:  "gopher_42",
	pattern.URL:            "https://example.com:8443/path",
	pattern.CreditCard:     "1234 5678 9012 3456",
	pattern.Hashtag:        "#golang",
	pattern.IPAddress:      "192.168.0.1",
	pattern.StrongPassword: "Abcdef1!",
}

func TestNames(t *testing.T) {
	t.Parallel()

	t.Run("returns every validator in declaration order", func(t *testing.T) {
		names := pattern.Names()
		require.Len(t, names, 15)
		assert.Equal(t, pattern.AlphaOnly, names[0])
		assert.Equal(t, pattern.StrongPassword, names[len(names)-1])

		for _, name := range names {
			_, ok := pattern.Lookup(name)
			assert.True(t, ok, "name should be registered: %s", name)
			_, ok = samples[name]
			assert.True(t, ok, "sample missing for: %s", name)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		names := pattern.Names()
		names[0] = "mutated"
		assert.Equal(t, pattern.AlphaOnly, pattern.Names()[0])
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	fn, ok := pattern.Lookup(pattern.HexColor)
	require.True(t, ok)
	assert.True(t, fn("#FFF"))

	fn, ok = pattern.Lookup("no_such_validator")
	assert.False(t, ok)
	assert.Nil(t, fn)
}

func TestParseName(t *testing.T) {
	t.Parallel()

	name, err := pattern.ParseName("time_24h")
	require.NoError(t, err)
	assert.Equal(t, pattern.Time24h, name)

	_, err = pattern.ParseName("Time_24h")
	assert.ErrorIs(t, err, pattern.ErrUnknownValidator)

	_, err = pattern.ParseName("")
	assert.ErrorIs(t, err, pattern.ErrUnknownValidator)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("accepts every sample", func(t *testing.T) {
		for name, input := range samples {
			ok, err := pattern.Match(name, input)
			require.NoError(t, err)
			assert.True(t, ok, "%s should accept %q", name, input)
		}
	})

	t.Run("unknown validator", func(t *testing.T) {
		ok, err := pattern.Match("zip_plus_four", "12345-6789")
		assert.ErrorIs(t, err, pattern.ErrUnknownValidator)
		assert.False(t, ok)
	})
}

func TestMatchValue(t *testing.T) {
	t.Parallel()

	text := "12345"
	var nilText *string

	tests := []struct {
		name    string
		value   any
		want    bool
		wantErr error
	}{
		{name: "string", value: "12345", want: true},
		{name: "malformed string is not an error", value: "12a45", want: false},
		{name: "string pointer", value: &text, want: true},
		{name: "nil string pointer", value: nilText, wantErr: pattern.ErrInvalidArgument},
		{name: "nil", value: nil, wantErr: pattern.ErrInvalidArgument},
		{name: "integer", value: 12345, wantErr: pattern.ErrInvalidArgument},
		{name: "float", value: 12345.0, wantErr: pattern.ErrInvalidArgument},
		{name: "bytes", value: []byte("12345"), wantErr: pattern.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pattern.MatchValue(pattern.PostalCode, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown validator wins over bad input", func(t *testing.T) {
		_, err := pattern.MatchValue("nope", 42)
		assert.ErrorIs(t, err, pattern.ErrUnknownValidator)
	})
}

func TestWholeStringMatch(t *testing.T) {
	t.Parallel()

	for name, input := range samples {
		fn, ok := pattern.Lookup(name)
		require.True(t, ok)

		assert.True(t, fn(input), "%s should accept %q", name, input)
		assert.False(t, fn(input+"\n"), "%s should reject trailing newline", name)
		assert.False(t, fn(" "+input), "%s should reject leading space", name)
		assert.False(t, fn("\n"+input), "%s should reject leading newline", name)
		assert.False(t, fn(""), "%s should reject empty input", name)
	}

	t.Run("trailing characters", func(t *testing.T) {
		assert.False(t, pattern.IsPostalCode("12345 "))
		assert.False(t, pattern.IsAlphaOnly("ABC1"))
		assert.False(t, pattern.IsUSPhone("123-456-78900"))
		assert.False(t, pattern.IsHexColor("#FFFFFFx"))
		assert.False(t, pattern.IsIPAddress("1.2.3.4 "))
		assert.False(t, pattern.IsCreditCard("1234 5678 9012 3456 "))
	})
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "abc", "12345", "#FFF", "Abcdef1!", "1234-5678 9012-3456"}
	for _, name := range pattern.Names() {
		fn, _ := pattern.Lookup(name)
		for _, in := range inputs {
			assert.Equal(t, fn(in), fn(in), "%s not deterministic for %q", name, in)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	g, _ := errgroup.WithContext(context.Background())
	results := make([][]bool, 32)

	for i := range results {
		g.Go(func() error {
			out := make([]bool, 0, len(samples))
			for _, name := range pattern.Names() {
				ok, err := pattern.Match(name, samples[name])
				if err != nil {
					return err
				}
				out = append(out, ok)
			}
			results[i] = out
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, out := range results {
		require.Len(t, out, len(samples))
		for _, ok := range out {
			assert.True(t, ok)
		}
	}
}
