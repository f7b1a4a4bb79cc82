package recognize

import (
	"testing"
	"time"
)

func TestWithOutputFilePath(t *testing.T) {
	type args struct {
		outputFilePath string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				outputFilePath: "test-output-file-path",
			},
			want: "test-output-file-path",
		},
		{
			name: "empty output file path",
			args: args{
				outputFilePath: "",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			got := WithOutputFilePath(tt.args.outputFilePath)
			if err := got(opts); (err != nil) != tt.wantErr {
				t.Errorf("WithOutputFilePath()() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := opts.outputFilePath; got != tt.want {
				t.Errorf("WithOutputFilePath()() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithBufferSize(t *testing.T) {
	type args struct {
		bufferSize int
	}
	tests := []struct {
		name    string
		args    args
		want    int
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				bufferSize: 1024,
			},
			want: 1024,
		},
		{
			name: "buffer size less than 1024",
			args: args{
				bufferSize: 1023,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			got := WithBufferSize(tt.args.bufferSize)
			if err := got(opts); (err != nil) != tt.wantErr {
				t.Errorf("WithBufferSize()() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := opts.bufferSize; got != tt.want {
				t.Errorf("WithBufferSize()() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithInactivityTimeout(t *testing.T) {
	type args struct {
		inactivityTimeout time.Duration
	}
	tests := []struct {
		name    string
		args    args
		want    time.Duration
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				inactivityTimeout: time.Minute,
			},
			want: time.Minute,
		},
		{
			name: "disabled",
			args: args{
				inactivityTimeout: 0,
			},
			want: 0,
		},
		{
			name: "negative inactivity timeout",
			args: args{
				inactivityTimeout: -time.Second,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			got := WithInactivityTimeout(tt.args.inactivityTimeout)
			if err := got(opts); (err != nil) != tt.wantErr {
				t.Errorf("WithInactivityTimeout()() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := opts.inactivityTimeout; got != tt.want {
				t.Errorf("WithInactivityTimeout()() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithLanguageCodes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		opts := &options{}
		for _, opt := range []Option{
			WithSourceLanguageCode("en-US"),
			WithTargetLanguageCode("sr-Latn"),
			WithGlossary(true),
		} {
			if err := opt(opts); err != nil {
				t.Fatalf("option error = %v", err)
			}
		}
		if opts.sourceLanguageCode != "en-US" {
			t.Errorf("sourceLanguageCode = %v, want en-US", opts.sourceLanguageCode)
		}
		if opts.targetLanguageCode != "sr-Latn" {
			t.Errorf("targetLanguageCode = %v, want sr-Latn", opts.targetLanguageCode)
		}
		if opts.glossary == nil || !*opts.glossary {
			t.Errorf("glossary = %v, want true", opts.glossary)
		}
	})

	t.Run("empty", func(t *testing.T) {
		opts := &options{}
		if err := WithSourceLanguageCode("")(opts); err == nil {
			t.Error("WithSourceLanguageCode()() error = nil, want an error")
		}
		if err := WithTargetLanguageCode("")(opts); err == nil {
			t.Error("WithTargetLanguageCode()() error = nil, want an error")
		}
	})
}

func TestWithTranslationFilePath(t *testing.T) {
	opts := &options{}
	if err := WithTranslationFilePath("")(opts); err == nil {
		t.Error("WithTranslationFilePath()() error = nil, want an error")
	}
	if err := WithTranslationFilePath("out.txt")(opts); err != nil {
		t.Errorf("WithTranslationFilePath()() error = %v", err)
	}
	if opts.translationFilePath != "out.txt" {
		t.Errorf("translationFilePath = %v, want out.txt", opts.translationFilePath)
	}
}
