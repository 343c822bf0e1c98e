package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/zhouzirui/talklens/backend/internal/analysis/relationship"
)

// LoadThresholds 读取 YAML 调参文件，未出现的键保留默认值。
//
//	bias_rate: 0.65
//	min_messages: 50
func LoadThresholds(path string) (relationship.Thresholds, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := relationship.DefaultThresholds()
	v.SetDefault("bias_rate", defaults.BiasRate)
	v.SetDefault("high_speed_minutes", defaults.HighSpeedMinutes)
	v.SetDefault("high_speed_rate", defaults.HighSpeedRate)
	v.SetDefault("leisurely_avg_minutes", defaults.LeisurelyAvgMinutes)
	v.SetDefault("story_avg_chars", defaults.StoryAvgChars)
	v.SetDefault("resonance_media_rate", defaults.ResonanceMediaRate)
	v.SetDefault("min_messages", defaults.MinMessages)
	v.SetDefault("reply_window_minutes", defaults.ReplyWindowMinutes)

	if err := v.ReadInConfig(); err != nil {
		return relationship.Thresholds{}, fmt.Errorf("read tuning file %s: %w", path, err)
	}

	var t relationship.Thresholds
	if err := v.Unmarshal(&t); err != nil {
		return relationship.Thresholds{}, fmt.Errorf("decode tuning file %s: %w", path, err)
	}
	return t, nil
}
