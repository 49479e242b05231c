package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// RenderSystem 实体绘制系统（玩家/敌机/子弹）
// 纯渲染，无游戏逻辑副作用；效果与危害区由 effects.Manager 自行绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建实体绘制系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制所有可见实体
// offsetX/offsetY 为镜头震动偏移
func (s *RenderSystem) Draw(screen *ebiten.Image, offsetX, offsetY float64) {
	s.drawEnemies(screen, offsetX, offsetY)
	s.drawPlayer(screen, offsetX, offsetY)
	s.drawBullets(screen, offsetX, offsetY)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		radius := s.radiusOf(id, 12)
		clr := color.RGBA{R: 96, G: 200, B: 255, A: 255}
		if s.isFlashing(id) {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(pos.X+ox), float32(pos.Y+oy), float32(radius), clr, true)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image, ox, oy float64) {
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		radius := s.radiusOf(id, 14)
		clr := enemyColor(enemy.Type)
		if s.isFlashing(id) {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}

		x, y := pos.X+ox, pos.Y+oy
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)

		// 朝向刻线
		tipX := x + math.Cos(enemy.FacingAngle)*radius
		tipY := y + math.Sin(enemy.FacingAngle)*radius
		vector.StrokeLine(screen, float32(x), float32(y), float32(tipX), float32(tipY), 2.0,
			color.RGBA{R: 32, G: 32, B: 32, A: 255}, true)

		s.drawArmorPlates(screen, id, enemy, x, y, radius)
	}
}

// drawArmorPlates 以护甲板方位的标记点显示未击碎的护甲
func (s *RenderSystem) drawArmorPlates(screen *ebiten.Image, id ecs.EntityID, enemy *components.EnemyComponent, x, y, radius float64) {
	armor, ok := ecs.GetComponent[*components.ArmorComponent](s.entityManager, id)
	if !ok {
		return
	}

	plateOffsets := map[components.PlateID]float64{
		components.PlateFront: 0,
		components.PlateLeft:  math.Pi / 2,
		components.PlateRight: -math.Pi / 2,
	}
	plateColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	for plateID, offset := range plateOffsets {
		if armor.Plates[plateID].Destroyed {
			continue
		}
		angle := enemy.FacingAngle + offset
		px := x + math.Cos(angle)*(radius+4)
		py := y + math.Sin(angle)*(radius+4)
		vector.DrawFilledCircle(screen, float32(px), float32(py), 4, plateColor, true)
	}
}

func (s *RenderSystem) drawBullets(screen *ebiten.Image, ox, oy float64) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager)
	for _, id := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := color.RGBA{R: 255, G: 240, B: 160, A: 255}
		if bullet.Faction == components.FactionEnemy {
			clr = color.RGBA{R: 255, G: 120, B: 120, A: 255}
		}
		if bullet.Method == components.KillByPlasma {
			clr = color.RGBA{R: 120, G: 255, B: 220, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(pos.X+ox), float32(pos.Y+oy), float32(s.radiusOf(id, 3)), clr, true)
	}
}

// radiusOf 返回实体的碰撞半径，缺失时使用回退值
func (s *RenderSystem) radiusOf(id ecs.EntityID, fallback float64) float64 {
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		return col.Radius
	}
	return fallback
}

// isFlashing 返回实体是否处于受击闪烁中
func (s *RenderSystem) isFlashing(id ecs.EntityID) bool {
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
	return ok && flash.IsActive && flash.Frames > 0
}

// enemyColor 返回敌机类型对应的基色
func enemyColor(t components.EnemyType) color.RGBA {
	switch t {
	case components.EnemyRusher:
		return color.RGBA{R: 255, G: 140, B: 90, A: 255}
	case components.EnemyStabber:
		return color.RGBA{R: 200, G: 140, B: 255, A: 255}
	case components.EnemyTank:
		return color.RGBA{R: 150, G: 160, B: 120, A: 255}
	default:
		return color.RGBA{R: 220, G: 180, B: 90, A: 255}
	}
}
