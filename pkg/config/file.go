package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/locaddo/locaddo/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Listen:        ptr.To(":8080"),
		MailProvider:  ptr.To(MailProviderResend),
		AWSRegion:     ptr.To("us-east-1"),
		WelcomeFrom:   ptr.To("Locaddo <team@locaddo.com>"),
		NotifyFrom:    ptr.To("Waitlist <noreply@locaddo.com>"),
		NotifyTo:      ptr.To("team@locaddo.com"),
		AllowedOrigin: ptr.To("*"),
		Debug:         ptr.To(false),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
	apiKey   string
}

// NewFile loads configPath. A missing or empty file is not an error: every
// value falls back to its default.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	Listen        *string `json:"listen,omitempty" yaml:"listen,omitempty"`
	MailProvider  *string `json:"mailProvider,omitempty" yaml:"mailProvider,omitempty"`
	AWSRegion     *string `json:"awsRegion,omitempty" yaml:"awsRegion,omitempty"`
	WelcomeFrom   *string `json:"welcomeFrom,omitempty" yaml:"welcomeFrom,omitempty"`
	NotifyFrom    *string `json:"notifyFrom,omitempty" yaml:"notifyFrom,omitempty"`
	NotifyTo      *string `json:"notifyTo,omitempty" yaml:"notifyTo,omitempty"`
	AllowedOrigin *string `json:"allowedOrigin,omitempty" yaml:"allowedOrigin,omitempty"`
	Debug         *bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// NewRawFileConfigFromConfig resolves every value of c, defaults included.
func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	return &RawFileConfig{
		Listen:        ptr.To(c.Listen()),
		MailProvider:  ptr.To(c.MailProvider()),
		AWSRegion:     ptr.To(c.AWSRegion()),
		WelcomeFrom:   ptr.To(c.WelcomeFrom()),
		NotifyFrom:    ptr.To(c.NotifyFrom()),
		NotifyTo:      ptr.To(c.NotifyTo()),
		AllowedOrigin: ptr.To(c.AllowedOrigin()),
		Debug:         ptr.To(c.Debug()),
	}, nil
}

// value reads one field under the read lock, falling back to the default.
func value[T any](f *File, field func(*RawFileConfig) *T) T {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if v := field(f.c); v != nil {
		return *v
	}
	return *field(defaultFileConfig)
}

func (f *File) Listen() string {
	return value(f, func(c *RawFileConfig) *string { return c.Listen })
}

func (f *File) MailProvider() string {
	return value(f, func(c *RawFileConfig) *string { return c.MailProvider })
}

func (f *File) AWSRegion() string {
	return value(f, func(c *RawFileConfig) *string { return c.AWSRegion })
}

func (f *File) WelcomeFrom() string {
	return value(f, func(c *RawFileConfig) *string { return c.WelcomeFrom })
}

func (f *File) NotifyFrom() string {
	return value(f, func(c *RawFileConfig) *string { return c.NotifyFrom })
}

func (f *File) NotifyTo() string {
	return value(f, func(c *RawFileConfig) *string { return c.NotifyTo })
}

func (f *File) AllowedOrigin() string {
	return value(f, func(c *RawFileConfig) *string { return c.AllowedOrigin })
}

func (f *File) Debug() bool {
	return value(f, func(c *RawFileConfig) *bool { return c.Debug })
}

func (f *File) ResendAPIKey() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.apiKey
}

func (f *File) SetListen(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Listen = &s
}

func (f *File) SetMailProvider(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.MailProvider = &s
}

func (f *File) SetDebug(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Debug = &b
}

func (f *File) isYAML() bool {
	switch strings.ToLower(filepath.Ext(f.filepath)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	conf, err := f.read()
	if err != nil {
		return err
	}
	applyEnvOverrides(conf)
	f.c = conf
	f.apiKey = strings.TrimSpace(os.Getenv(EnvResendAPIKey))

	return nil
}

func (f *File) read() (*RawFileConfig, error) {
	if f.filepath == "" {
		return &RawFileConfig{}, nil
	}

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			return &RawFileConfig{}, nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using a streaming decoder
	// will not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		return &RawFileConfig{}, nil
	}

	conf := RawFileConfig{}
	if f.isYAML() {
		err = yaml.Unmarshal(b, &conf)
	} else {
		err = json.Unmarshal(b, &conf)
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}

	return &conf, nil
}

func applyEnvOverrides(c *RawFileConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvListen)); v != "" {
		c.Listen = &v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMailProvider)); v != "" {
		c.MailProvider = &v
	}
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}
	if f.filepath == "" {
		return pkgerrors.New("config file path is empty")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	if f.isYAML() {
		enc := yaml.NewEncoder(fp)
		enc.SetIndent(2)
		err = enc.Encode(f.c)
		if err == nil {
			err = enc.Close()
		}
	} else {
		enc := json.NewEncoder(fp)
		enc.SetIndent("", "  ")
		err = enc.Encode(f.c)
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"listen":        f.Listen(),
		"mailProvider":  f.MailProvider(),
		"awsRegion":     f.AWSRegion(),
		"welcomeFrom":   f.WelcomeFrom(),
		"notifyFrom":    f.NotifyFrom(),
		"notifyTo":      f.NotifyTo(),
		"allowedOrigin": f.AllowedOrigin(),
		"debug":         f.Debug(),
		"resendAPIKey":  f.ResendAPIKey() != "",
	}
}
